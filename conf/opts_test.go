package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitArgs(t *testing.T) {
	opts, err := InitArgs([]string{
		"--spentscript", "76a9144bfbaf6afb76cc5771bc6404810d1cc041a6933988ac",
		"--spendingtx", "0200000001",
		"--amount", "630482530",
		"--input", "0",
		"--height", "481824",
	})
	assert.NoError(t, err)
	assert.Equal(t, "76a9144bfbaf6afb76cc5771bc6404810d1cc041a6933988ac", opts.SpentScript)
	assert.Equal(t, uint64(630482530), opts.Amount)
	assert.Equal(t, 0, opts.InputIndex)
	assert.Equal(t, int64(481824), opts.Height)
	assert.Equal(t, int64(-1), opts.Flags)
	assert.Equal(t, "info", opts.LogLevel)
}

func TestInitArgsUnknownFlag(t *testing.T) {
	_, err := InitArgs([]string{"--nosuchoption"})
	assert.Error(t, err)
}

func TestOptsString(t *testing.T) {
	opts, err := InitArgs([]string{"--amount", "42", "--regtest"})
	assert.NoError(t, err)
	assert.Equal(t, "input:0 amount:42 height:-1 regtest:true testnet:false", opts.String())
}
