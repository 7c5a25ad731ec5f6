package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrongArgumentCountPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"vocabulary.txt", "map.csv"})

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "You must provide all the arguments.")
	assert.Contains(t, out.String(), "Usage:")
}
