package conf

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

type Opts struct {
	DataDir     string `long:"datadir" description:"specified program data dir"`
	ShowVersion bool   `short:"v" long:"version" description:"print the consensus engine version and exit"`

	SpentScript string `long:"spentscript" description:"hex encoded script of the output being spent"`
	SpendingTx  string `long:"spendingtx" description:"hex encoded spending transaction"`
	Amount      uint64 `long:"amount" description:"value of the spent output in satoshi, checked for segwit spends"`
	InputIndex  int    `long:"input" description:"index of the spending input"`

	Height int64 `long:"height" default:"-1" description:"derive verification flags from this block height"`
	Flags  int64 `long:"flags" default:"-1" description:"explicit verification flag mask, takes precedence over height"`

	RegTest bool `long:"regtest" description:"use the regression test activation heights"`
	TestNet bool `long:"testnet" description:"use the test network activation heights"`

	LogLevel string `short:"d" long:"debuglevel" default:"info" description:"logging level {debug, info, notice, warn, error, critical}"`
}

func InitArgs(args []string) (*Opts, error) {
	opts := new(Opts)
	_, err := flags.ParseArgs(opts, args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	return opts, nil
}

func (opts *Opts) String() string {
	return fmt.Sprintf("input:%d amount:%d height:%d regtest:%v testnet:%v",
		opts.InputIndex, opts.Amount, opts.Height, opts.RegTest, opts.TestNet)
}
