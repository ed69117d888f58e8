package vm

import (
	"github.com/evmlite/evmlite/core/types"
	"github.com/evmlite/evmlite/word"
)

// CallInfo carries everything a frame needs to know about how it was
// invoked: who called it, on whose behalf (origin), with what value
// and calldata, and whether it is running under a static (read-only)
// restriction.
type CallInfo struct {
	Origin   types.Address // the address that signed the outermost transaction
	Caller   types.Address // the address that invoked this frame directly
	Address  types.Address // the address this frame executes as (ADDRESS)
	Value    word.Word     // value attached to this call (CALLVALUE)
	Data     []byte        // calldata
	IsStatic bool          // true once any enclosing frame entered a static call

	// TransfersValue tells the host whether Value should actually move
	// from Caller to Address. CALL sets this when it carries nonzero
	// value; DELEGATECALL never does, since it only forwards the
	// parent's msg.value for CALLVALUE to read without re-moving funds
	// that already moved on an earlier call.
	TransfersValue bool
}
