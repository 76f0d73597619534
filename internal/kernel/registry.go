package kernel

import "github.com/tarusov/etwkernel/internal/provider"

var (
	registryV2 = layout{
		i64("InitialTime"),
		u32("Status"),
		u32("Index"),
		ptr("KeyHandle"),
		wstr("KeyName"),
	}
	registryKey = versions{2: registryV2}

	registryCountersV2 = layout{
		u64("Counter1"),
		u64("Counter2"),
		u64("Counter3"),
		u64("Counter4"),
		u64("Counter5"),
		u64("Counter6"),
		u64("Counter7"),
		u64("Counter8"),
		u64("Counter9"),
		u64("Counter10"),
		u64("Counter11"),
	}
)

var registryEvents = newFamily("Registry", provider.Registry).
	op(10, "Create", registryKey).
	op(11, "Open", registryKey).
	op(13, "Query", registryKey).
	op(14, "SetValue", registryKey).
	op(16, "QueryValue", registryKey).
	op(17, "EnumerateKey", registryKey).
	op(18, "EnumerateValueKey", registryKey).
	op(19, "QueryMultipleValue", registryKey).
	op(20, "SetInformation", registryKey).
	op(21, "Flush", registryKey).
	op(22, "KCBCreate", versions{
		1: {
			u32("Status"),
			ptr("KeyHandle"),
			i64("ElapsedTime"),
			u32("Index"),
			wstr("KeyName"),
		},
		2: registryV2,
	}).
	op(23, "KCBDelete", registryKey).
	op(25, "KCBRundownEnd", registryKey).
	op(27, "Close", registryKey).
	op(28, "SetSecurity", registryKey).
	op(29, "QuerySecurity", registryKey).
	op(34, "Counters", versions{2: registryCountersV2}).
	op(35, "Config", versions{2: {u32("CurrentControlSet")}})
