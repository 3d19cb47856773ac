package config

type YAMLFile struct {
	Gendata YAMLGendata `yaml:"gendata"`
}

type YAMLGendata struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	Report      string `yaml:"report"`
	Iterations  *int   `yaml:"iterations"`
	MaxRun      *int   `yaml:"max_run"`
	Seed        *int64 `yaml:"seed"`
	Compression string `yaml:"compression"`
}
