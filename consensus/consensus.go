// Package consensus exposes the script verification entry points of
// libbitcoinconsensus, the consensus library built from Bitcoin Core's
// sources. The library is the sole authority on transaction structure and
// script evaluation; this package only carries bytes across the boundary and
// maps the native error protocol onto errcode values.
//
// Verify checks that a spending transaction input correctly spends a
// previous output. For example the transaction
//
//	aca326a724eda9a461c10a876534ecd5ae7b27f10f26c3862fb996f80ea2d45d
//
// spends the first output of
//
//	95da344585fcf2e5f7d6cbf2c3df2dcce84f9196f7a7bb901a43275cd6eb7c3f
//
// whose script is 76a9144bfbaf6afb76cc5771bc6404810d1cc041a6933988ac; calling
// Verify with that script, the serialized spending transaction and input
// index 0 returns nil. The amount is only checked for segwit spends.
package consensus

/*
#cgo LDFLAGS: -lbitcoinconsensus -lstdc++ -lm
#include <stdint.h>

typedef enum bitcoinconsensus_error_t
{
    bitcoinconsensus_ERR_OK = 0,
    bitcoinconsensus_ERR_TX_INDEX,
    bitcoinconsensus_ERR_TX_SIZE_MISMATCH,
    bitcoinconsensus_ERR_TX_DESERIALIZE,
    bitcoinconsensus_ERR_AMOUNT_REQUIRED,
    bitcoinconsensus_ERR_INVALID_FLAGS,
} bitcoinconsensus_error;

extern int bitcoinconsensus_verify_script_with_amount(
    const unsigned char *scriptPubKey, unsigned int scriptPubKeyLen, int64_t amount,
    const unsigned char *txTo, unsigned int txToLen,
    unsigned int nIn, unsigned int flags, bitcoinconsensus_error *err);

extern unsigned int bitcoinconsensus_version();
*/
import "C"

import (
	"math"
	"unsafe"

	"github.com/copernet/go-bitcoinconsensus/errcode"
	"github.com/copernet/go-bitcoinconsensus/model/script"
)

// Version returns the libbitcoinconsensus API version the binary was built
// against.
func Version() uint32 {
	return uint32(C.bitcoinconsensus_version())
}

// Verify checks a single spend with every rule enabled. It is equivalent to
// VerifyWithFlags with script.ScriptVerifyAll.
//
// spentOutput is the scriptPubKey of the output being spent and spendingTx
// the spending transaction, both in wire serialization. amount is the value
// of the spent output in satoshi and inputIndex the index of the input doing
// the spend. Both buffers are borrowed for the duration of the call and must
// not be mutated concurrently.
func Verify(spentOutput []byte, amount uint64, spendingTx []byte, inputIndex int) error {
	return VerifyWithFlags(spentOutput, amount, spendingTx, inputIndex, script.ScriptVerifyAll)
}

// VerifyWithFlags is Verify with a caller supplied rule mask, typically
// derived from a block height via chainparams.HeightToFlags. A mask with a
// bit outside the defined rules fails with ScriptErrInvalidFlags.
func VerifyWithFlags(spentOutput []byte, amount uint64, spendingTx []byte,
	inputIndex int, flags script.VerifyFlags) error {
	if inputIndex < 0 {
		panic("consensus: negative input index")
	}

	// The out-parameter must hold a defined value even if the engine
	// never writes it.
	cErr := C.bitcoinconsensus_error(errcode.ScriptErrScript)

	ret := C.bitcoinconsensus_verify_script_with_amount(
		cBuf(spentOutput), cLen(spentOutput), C.int64_t(amount),
		cBuf(spendingTx), cLen(spendingTx),
		C.uint(inputIndex), C.uint(flags), &cErr)
	if ret != 1 {
		return errcode.New(errcode.ScriptVerifyErr(cErr))
	}
	return nil
}

func cBuf(goSlice []byte) *C.uchar {
	if len(goSlice) == 0 {
		return nil
	}
	return (*C.uchar)(unsafe.Pointer(&goSlice[0]))
}

// cLen converts a buffer length to the engine's unsigned int width. A buffer
// this cannot represent violates the binding contract and aborts rather than
// letting the engine read a truncated length.
func cLen(goSlice []byte) C.uint {
	if uint64(len(goSlice)) > math.MaxUint32 {
		panic("consensus: buffer length exceeds the native unsigned int range")
	}
	return C.uint(len(goSlice))
}
