package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/copernet/go-bitcoinconsensus/conf"
	"github.com/copernet/go-bitcoinconsensus/consensus"
	"github.com/copernet/go-bitcoinconsensus/errcode"
	"github.com/copernet/go-bitcoinconsensus/log"
	"github.com/copernet/go-bitcoinconsensus/model/chainparams"
	"github.com/copernet/go-bitcoinconsensus/model/script"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := conf.InitArgs(args)
	if err != nil {
		return err
	}

	if opts.ShowVersion {
		fmt.Printf("bitcoinconsensus library version %d\n", consensus.Version())
		return nil
	}

	if err := conf.InitConfig(opts); err != nil {
		return err
	}
	if err := os.MkdirAll(conf.AppConf.DataDir, 0700); err != nil {
		return errors.Wrap(err, "create data dir")
	}
	if err := log.InitLogger(conf.AppConf.DataDir, conf.AppConf.LogLevel); err != nil {
		return err
	}

	spent, err := hex.DecodeString(opts.SpentScript)
	if err != nil {
		return errors.Wrap(err, "decode spentscript")
	}
	spending, err := hex.DecodeString(opts.SpendingTx)
	if err != nil {
		return errors.Wrap(err, "decode spendingtx")
	}

	flags := verifyFlags(opts)
	log.Print("consensus", "debug", "verifying spend with flags %s, opts %s", flags, spew.Sdump(opts))

	if err := consensus.VerifyWithFlags(spent, opts.Amount, spending, opts.InputIndex, flags); err != nil {
		log.Print("consensus", "info", "verification failed: %v", err)
		if pe, ok := err.(errcode.ProjectError); ok {
			return errors.Errorf("verification failed: %s", pe.Desc)
		}
		return err
	}

	fmt.Println("verification succeeded")
	return nil
}

// verifyFlags resolves the rule mask from the options: an explicit mask wins,
// then a height on the selected network, otherwise every rule.
func verifyFlags(opts *conf.Opts) script.VerifyFlags {
	if opts.Flags >= 0 {
		return script.VerifyFlags(opts.Flags)
	}
	if opts.Height >= 0 {
		param := &chainparams.MainNetParams
		if opts.TestNet {
			param = &chainparams.TestNet3Params
		}
		if opts.RegTest {
			param = &chainparams.RegressionNetParams
		}
		return param.HeightToFlags(int32(opts.Height))
	}
	return script.ScriptVerifyAll
}
