package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/copernet/go-bitcoinconsensus/conf"
	"github.com/copernet/go-bitcoinconsensus/model/script"
)

func TestVerifyFlagsResolution(t *testing.T) {
	opts, err := conf.InitArgs([]string{})
	assert.NoError(t, err)
	assert.Equal(t, script.ScriptVerifyAll, verifyFlags(opts))

	opts, err = conf.InitArgs([]string{"--height", "0"})
	assert.NoError(t, err)
	assert.Equal(t, script.ScriptVerifyNone, verifyFlags(opts))

	opts, err = conf.InitArgs([]string{"--height", "481824"})
	assert.NoError(t, err)
	assert.Equal(t, script.ScriptVerifyAll, verifyFlags(opts))

	opts, err = conf.InitArgs([]string{"--height", "0", "--regtest"})
	assert.NoError(t, err)
	assert.Equal(t, script.ScriptVerifyAll, verifyFlags(opts))

	// explicit mask wins over height
	opts, err = conf.InitArgs([]string{"--height", "481824", "--flags", "1"})
	assert.NoError(t, err)
	assert.Equal(t, script.ScriptVerifyP2SH, verifyFlags(opts))
}
