package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstallSpec_Label(t *testing.T) {
	assert.Equal(t, "docs", InstallSpec{Name: "docs"}.Label(3))
	assert.Equal(t, "spec 3", InstallSpec{}.Label(3))
}

func TestResult_Copied(t *testing.T) {
	result := &Result{
		Operations: []OperationResult{
			{Operation: Operation{Entry: "a", Status: StatusDone}},
			{Operation: Operation{Entry: "b", Status: StatusReady}},
			{Operation: Operation{Entry: "c", Status: StatusDone}},
			{Operation: Operation{Entry: "d", Status: StatusError}},
		},
	}
	assert.Equal(t, 2, result.Copied())
	assert.Equal(t, 0, (&Result{}).Copied())
}
