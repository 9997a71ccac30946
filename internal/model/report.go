package model

// ModuleStatus is the outcome of the transform stage for one input module.
type ModuleStatus string

const (
	// StatusObfuscated means the rewritten module was written.
	StatusObfuscated ModuleStatus = "obfuscated"
	// StatusMissing means the input module did not exist and was skipped.
	StatusMissing ModuleStatus = "missing"
	// StatusFailed means the module could not be loaded, transformed or written.
	StatusFailed ModuleStatus = "failed"
)

// ModuleResult records what happened to a single input module.
type ModuleResult struct {
	Input   Path         `yaml:"input"`
	Output  Path         `yaml:"output,omitempty"`
	SHA256  string       `yaml:"sha256,omitempty"`
	Status  ModuleStatus `yaml:"status"`
	Types   int          `yaml:"types"`
	Methods int          `yaml:"methods"`
	Skipped int          `yaml:"skipped"`
	Error   string       `yaml:"error,omitempty"`
}

// DecompileResult records the inspection listing produced for one module.
type DecompileResult struct {
	Module Path   `yaml:"module"`
	Output Path   `yaml:"output,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

// RunReport is the persisted summary of a pipeline run.
type RunReport struct {
	Solution      Path              `yaml:"solution"`
	Configuration string            `yaml:"configuration"`
	Output        Path              `yaml:"output"`
	Modules       []ModuleResult    `yaml:"modules"`
	Decompiled    []DecompileResult `yaml:"decompiled,omitempty"`
}

// Outputs returns the paths of every module that was rewritten.
func (r RunReport) Outputs() []Path {
	var outputs []Path

	for _, result := range r.Modules {
		if result.Status == StatusObfuscated {
			outputs = append(outputs, result.Output)
		}
	}

	return outputs
}
