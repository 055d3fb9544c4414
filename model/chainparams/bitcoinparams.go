package chainparams

import (
	"github.com/copernet/go-bitcoinconsensus/model/script"
)

// ActiveNetParams is the set of parameters the package-level helpers use.
var ActiveNetParams = &MainNetParams

// BitcoinParams holds the soft-fork activation schedule of a network. Every
// height is the first block at which the associated rule is mandatory; the
// values for the main network are the real historical activation blocks and
// are consensus-critical.
type BitcoinParams struct {
	Name string

	// Block height at which BIP16 (P2SH) becomes active
	BIP16Height int32
	// Block height at which BIP66 (strict DER signatures) becomes active
	BIP66Height int32
	// Block height at which BIP65 (CHECKLOCKTIMEVERIFY) becomes active
	BIP65Height int32
	// Block height at which BIP68, BIP112 and BIP113 (CSV) become active
	CSVHeight int32
	// Block height at which BIP141, BIP143 and BIP147 (segwit and
	// NULLDUMMY) become active
	SegwitHeight int32
}

var MainNetParams = BitcoinParams{
	Name:         "mainnet",
	BIP16Height:  173805,
	BIP66Height:  363725,
	BIP65Height:  388381,
	CSVHeight:    419328,
	SegwitHeight: 481824,
}

var TestNet3Params = BitcoinParams{
	Name: "testnet3",
	// P2SH has been enforced since the start of the test network.
	BIP16Height:  0,
	BIP66Height:  330776,
	BIP65Height:  581885,
	CSVHeight:    770112,
	SegwitHeight: 834624,
}

var RegressionNetParams = BitcoinParams{
	Name:         "regtest",
	BIP16Height:  0,
	BIP66Height:  0,
	BIP65Height:  0,
	CSVHeight:    0,
	SegwitHeight: 0,
}

// HeightToFlags accumulates the verification rules active at the given
// height. Each threshold is checked independently so rules only ever
// accumulate: for h1 <= h2 the result for h1 is a subset of the result for
// h2.
func (param *BitcoinParams) HeightToFlags(height int32) script.VerifyFlags {
	flags := script.ScriptVerifyNone
	if height >= param.BIP16Height {
		flags |= script.ScriptVerifyP2SH
	}
	if height >= param.BIP66Height {
		flags |= script.ScriptVerifyDersig
	}
	if height >= param.BIP65Height {
		flags |= script.ScriptVerifyCheckLockTimeVerify
	}
	if height >= param.CSVHeight {
		flags |= script.ScriptVerifyCheckSequenceVerify
	}
	if height >= param.SegwitHeight {
		flags |= script.ScriptVerifyNullDummy | script.ScriptVerifyWitness
	}
	return flags
}

// HeightToFlags reports the rules active at the given height on the active
// network.
func HeightToFlags(height int32) script.VerifyFlags {
	return ActiveNetParams.HeightToFlags(height)
}
