package ports

// IndexSource draws uniformly from the closed interval [0, n].
type IndexSource interface {
	Draw(n int) int
}
