package errcode

// ScriptVerifyErr mirrors the bitcoinconsensus_error enumeration. The value
// crosses the FFI boundary as the verification out-parameter, so the numeric
// values are a wire contract: never reorder or renumber the members.
type ScriptVerifyErr int32

const (
	// ScriptErrScript is the zero value the out-parameter is initialized
	// to before the call; the engine also leaves it untouched for plain
	// script evaluation failure.
	ScriptErrScript ScriptVerifyErr = iota
	ScriptErrTxIndex
	ScriptErrTxSizeMismatch
	ScriptErrTxDeserialize
	ScriptErrAmountRequired
	ScriptErrInvalidFlags
)

func scriptVerifyErrorString(scriptError ScriptVerifyErr) string {
	switch scriptError {
	case ScriptErrScript:
		return "Script did not verify or error value was not set"
	case ScriptErrTxIndex:
		return "Input index out of range for the spending transaction"
	case ScriptErrTxSizeMismatch:
		return "Declared transaction length did not match the buffer size"
	case ScriptErrTxDeserialize:
		return "Spending transaction could not be deserialized"
	case ScriptErrAmountRequired:
		return "Input amount is required when the WITNESS rule is used"
	case ScriptErrInvalidFlags:
		return "Script verification flags are invalid"
	default:
		break
	}
	return "unknown error"
}

func (se ScriptVerifyErr) String() string {
	return scriptVerifyErrorString(se)
}
