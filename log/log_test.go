package log

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/copernet/go-bitcoinconsensus/conf"
)

func TestValidLogLevel(t *testing.T) {
	levels := []string{"emergency", "Alert", "critical", "error", "warn", "info", "debug", "Notice"}
	for _, levelStr := range levels {
		if _, ok := validLogLevel(levelStr); !ok {
			t.Errorf("level %s should be valid", levelStr)
		}
	}
	if _, ok := validLogLevel("chatty"); ok {
		t.Errorf("level chatty should be invalid")
	}
}

func TestInitLogger(t *testing.T) {
	dir, err := ioutil.TempDir("", "logtest")
	if err != nil {
		t.Fatalf("generate temp path failed: %v", err)
	}
	defer os.RemoveAll(dir)

	if err := InitLogger(dir, "debug"); err != nil {
		t.Errorf("InitLogger failed: %v", err)
	}
	if err := InitLogger(dir, "chatty"); err == nil {
		t.Errorf("InitLogger should reject an unknown level")
	}
}

func TestIsIncludeModule(t *testing.T) {
	old := conf.AppConf.LogModule
	defer func() { conf.AppConf.LogModule = old }()

	conf.AppConf.LogModule = []string{"consensus", "chainparams"}
	if !IsIncludeModule("consensus") {
		t.Errorf("module consensus should be included")
	}
	if IsIncludeModule("mempool") {
		t.Errorf("module mempool should not be included")
	}
}
