package errcode

import "testing"

// The numeric values are handed to libbitcoinconsensus as the error
// out-parameter, so each member is pinned to its ordinal.
func TestScriptVerifyErrValues(t *testing.T) {
	tests := []struct {
		in   ScriptVerifyErr
		want int32
	}{
		{ScriptErrScript, 0},
		{ScriptErrTxIndex, 1},
		{ScriptErrTxSizeMismatch, 2},
		{ScriptErrTxDeserialize, 3},
		{ScriptErrAmountRequired, 4},
		{ScriptErrInvalidFlags, 5},
	}
	for _, test := range tests {
		if int32(test.in) != test.want {
			t.Errorf("%s should have value %d instead of %d", test.in, test.want, int32(test.in))
		}
	}
}

func TestScriptVerifyErr_String(t *testing.T) {
	tests := []struct {
		in   ScriptVerifyErr
		want string
	}{
		{ScriptErrScript, "Script did not verify or error value was not set"},
		{ScriptErrTxIndex, "Input index out of range for the spending transaction"},
		{ScriptErrTxSizeMismatch, "Declared transaction length did not match the buffer size"},
		{ScriptErrTxDeserialize, "Spending transaction could not be deserialized"},
		{ScriptErrAmountRequired, "Input amount is required when the WITNESS rule is used"},
		{ScriptErrInvalidFlags, "Script verification flags are invalid"},
		{ScriptVerifyErr(42), "unknown error"},
	}
	for _, test := range tests {
		if got := test.in.String(); got != test.want {
			t.Errorf("String() should be %q instead of %q", test.want, got)
		}
	}
}
