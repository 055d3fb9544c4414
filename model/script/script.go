package script

// VerifyFlags is a bitmask of script verification rules handed to the
// consensus engine. The bit values are part of the libbitcoinconsensus
// interface; a set bit outside the defined rules is rejected by the engine
// with ErrInvalidFlags.
type VerifyFlags uint

/** Script verification flags */
const (
	ScriptVerifyNone VerifyFlags = 0

	// Evaluate P2SH subscripts (softfork safe, BIP16).
	ScriptVerifyP2SH VerifyFlags = 1 << 0

	// Passing a non-strict-DER signature to a checkSig operation causes
	// script failure (softfork safe, BIP66).
	ScriptVerifyDersig VerifyFlags = 1 << 2

	// Verify dummy stack item consumed by CHECKMULTISIG is of zero-length
	// (softfork safe, BIP147).
	ScriptVerifyNullDummy VerifyFlags = 1 << 4

	// Verify CHECKLOCKTIMEVERIFY (BIP65).
	ScriptVerifyCheckLockTimeVerify VerifyFlags = 1 << 9

	// Support CHECKSEQUENCEVERIFY opcode (BIP112).
	ScriptVerifyCheckSequenceVerify VerifyFlags = 1 << 10

	// Support segregated witness program evaluation (BIP141).
	ScriptVerifyWitness VerifyFlags = 1 << 11
)

// ScriptVerifyAll enables every rule the consensus engine exposes. This is
// the mask the convenience Verify call uses and the mask HeightToFlags
// converges to at the tip.
const ScriptVerifyAll = ScriptVerifyP2SH | ScriptVerifyDersig |
	ScriptVerifyNullDummy | ScriptVerifyCheckLockTimeVerify |
	ScriptVerifyCheckSequenceVerify | ScriptVerifyWitness

var flagNames = []struct {
	flag VerifyFlags
	name string
}{
	{ScriptVerifyP2SH, "P2SH"},
	{ScriptVerifyDersig, "DERSIG"},
	{ScriptVerifyNullDummy, "NULLDUMMY"},
	{ScriptVerifyCheckLockTimeVerify, "CHECKLOCKTIMEVERIFY"},
	{ScriptVerifyCheckSequenceVerify, "CHECKSEQUENCEVERIFY"},
	{ScriptVerifyWitness, "WITNESS"},
}

func (flags VerifyFlags) HasFlag(flag VerifyFlags) bool {
	return flags&flag == flag
}

func (flags VerifyFlags) AddFlag(flag VerifyFlags) VerifyFlags {
	return flags | flag
}

func (flags VerifyFlags) String() string {
	if flags == ScriptVerifyNone {
		return "NONE"
	}
	out := ""
	for _, fn := range flagNames {
		if flags&fn.flag != 0 {
			if out != "" {
				out += "|"
			}
			out += fn.name
		}
	}
	if out == "" {
		return "NONE"
	}
	return out
}
