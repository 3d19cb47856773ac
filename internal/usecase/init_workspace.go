package usecase

import (
	"path/filepath"

	"github.com/aalvaropc/gendata/internal/domain"
	"github.com/aalvaropc/gendata/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
	configs     ports.ConfigLoader
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer, configs ports.ConfigLoader) *InitWorkspace {
	return &InitWorkspace{initializer: initializer, configs: configs}
}

// InitResult says where the scaffold went and what a run with it would use.
type InitResult struct {
	ConfigPath string
	Config     domain.Config
}

// Execute scaffolds root, then loads the written gendata.yaml back so a broken
// or hand-edited file (kept when force is false) is reported now instead of on
// the first generate run.
func (uc *InitWorkspace) Execute(root string, force bool) (InitResult, error) {
	res := InitResult{ConfigPath: filepath.Join(root, domain.DefaultConfigFileName)}

	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force); err != nil {
		return res, err
	}

	cfg, err := uc.configs.LoadConfig(res.ConfigPath)
	if err != nil {
		return res, err
	}
	if err := cfg.Validate(); err != nil {
		return res, err
	}
	res.Config = cfg
	return res, nil
}
