package vm

// gas.go implements the per-frame gas tracker described by the
// machine's resource model: gas is charged structurally (a flat cost
// per step, per word of memory growth, per storage write, per log
// topic) rather than matched to any particular hard fork's exact
// schedule. A child frame's tracker is seeded from whatever the parent
// had remaining at the moment of the call, so gas can never be
// manufactured by nesting calls.

// Structural gas costs. These are deliberately simple: the machine's
// job is to meter progress, not to reproduce a historical fee market.
const (
	GasQuickStep   uint64 = 2
	GasFastStep    uint64 = 3
	GasFastestStep uint64 = 5
	GasMidStep     uint64 = 8
	GasSlowStep    uint64 = 10
	GasExtStep     uint64 = 20

	GasKeccak256Word uint64 = 6
	GasMemoryWord    uint64 = 3
	GasCopyWord      uint64 = 3

	GasSload  uint64 = 100
	GasSstore uint64 = 5000
	GasTload  uint64 = 100
	GasTstore uint64 = 100

	GasLog      uint64 = 375
	GasLogTopic uint64 = 375
	GasLogData  uint64 = 8

	GasBalance       uint64 = 100
	GasExtcodeSize   uint64 = 100
	GasExtcodeCopy   uint64 = 100
	GasExtcodeHash   uint64 = 100
	GasBlockHash     uint64 = 20
	GasBlobHash      uint64 = 3
	GasSelfBalance   uint64 = 5
	GasCall          uint64 = 100
	GasCreate        uint64 = 32000
	GasCreateDataGas uint64 = 200
	GasSelfdestruct  uint64 = 5000

	// CallGasFraction is the denominator of the 63/64 rule: a caller
	// may forward at most available - available/CallGasFraction.
	CallGasFraction uint64 = 64
	// CallStipend is granted to a callee that receives value, on top
	// of whatever gas the caller forwards, and is not charged to the
	// caller.
	CallStipend uint64 = 2300

	// MaxCallDepth bounds recursion regardless of what the host's own
	// recursion budget allows.
	MaxCallDepth = 1024

	// MaxCodeSize bounds the code a CREATE/CREATE2 may deposit.
	MaxCodeSize = 24576
)

// GasTracker meters a single frame's gas budget. It never goes
// negative: Charge fails with ErrInsufficientGas instead, which is a
// revert-class error rather than a panic, so the frame that ran out of
// gas unwinds like any other failed frame.
type GasTracker struct {
	remaining uint64
}

// NewGasTracker creates a tracker with the given budget.
func NewGasTracker(limit uint64) *GasTracker {
	return &GasTracker{remaining: limit}
}

// Remaining returns the gas left in this frame.
func (g *GasTracker) Remaining() uint64 {
	return g.remaining
}

// Charge deducts n gas, failing if the frame does not have enough.
func (g *GasTracker) Charge(n uint64) error {
	if n > g.remaining {
		g.remaining = 0
		return ErrInsufficientGas
	}
	g.remaining -= n
	return nil
}

// Refund credits n gas back to the tracker. The CALL-family and
// CREATE handlers use it to return the part of the forwarded gas a
// child frame did not use.
func (g *GasTracker) Refund(n uint64) {
	g.remaining += n
}

// Child creates a new tracker for a nested call, seeded with exactly
// the gas being forwarded. The parent's own remaining balance is
// reduced by the caller of Child (typically via ForwardGas), not by
// Child itself.
func (g *GasTracker) Child(forwarded uint64) *GasTracker {
	return NewGasTracker(forwarded)
}
