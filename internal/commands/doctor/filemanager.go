package doctor

import (
	"context"

	"github.com/hay-kot/randwall/internal/pcmanfm"
)

// FileManagerCheck verifies the file manager binary is installed.
type FileManagerCheck struct {
	setter *pcmanfm.Setter
}

// NewFileManagerCheck creates a file manager check.
func NewFileManagerCheck(setter *pcmanfm.Setter) *FileManagerCheck {
	return &FileManagerCheck{setter: setter}
}

func (c *FileManagerCheck) Name() string {
	return "File Manager"
}

func (c *FileManagerCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	if err := c.setter.Check(ctx); err != nil {
		result.fail(c.setter.Binary(), err.Error())
		return result
	}

	version, err := c.setter.Version(ctx)
	if err != nil {
		result.warn(c.setter.Binary(), "installed, but --version failed: "+err.Error())
		return result
	}

	result.pass(c.setter.Binary(), version)
	return result
}
