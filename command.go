package orrery

// commandKind enumerates the control-surface operations a consumer
// drives: start/stop, rescale target speed or time step, pick a
// thread count, cycle the integration method, toggle use_target_speed.
type commandKind int

const (
	cmdSetRunning commandKind = iota
	cmdScaleTargetSpeed
	cmdScaleTimeStep
	cmdSetMethod
	cmdSetThreads
	cmdToggleUseTargetSpeed
)

// command is applied by the driver at the next epoch boundary, never
// mid-step.
type command struct {
	kind    commandKind
	running bool
	factor  float64
	method  Method
	threads int
}

// commandQueueSize bounds the control-surface channel; while the
// driver is Running, a consumer with this many commands already
// pending before the next epoch boundary blocks in enqueue, rather
// than having commands silently dropped.
const commandQueueSize = 16
