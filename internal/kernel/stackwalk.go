package kernel

import "github.com/tarusov/etwkernel/internal/provider"

var stackWalkEvents = newFamily("StackWalk", provider.StackWalk).
	op(32, "Stack", versions{2: {
		u64("EventTimeStamp"),
		u32("StackProcess"),
		u32("StackThread"),
		ptrs("Stack"),
	}})
