package kernel

import "github.com/tarusov/etwkernel/internal/provider"

var (
	tcpV2 = layout{
		u32("PID"),
		u32("size"),
		u32("daddr"),
		u32("saddr"),
		u16("dport"),
		u16("sport"),
		u32("seqnum"),
		ptr("connid"),
	}
	tcpSendV2 = layout{
		u32("PID"),
		u32("size"),
		u32("daddr"),
		u32("saddr"),
		u16("dport"),
		u16("sport"),
		u32("startime"),
		u32("endtime"),
		u32("seqnum"),
		ptr("connid"),
	}
	tcpConnectV2 = layout{
		u32("PID"),
		u32("size"),
		u32("daddr"),
		u32("saddr"),
		u16("dport"),
		u16("sport"),
		u16("mss"),
		u16("sackopt"),
		u16("tsopt"),
		u16("wsopt"),
		u32("rcvwin"),
		i16("rcvwinscale"),
		i16("sndwinscale"),
		u32("seqnum"),
		ptr("connid"),
	}
)

// The category keeps the spelling consumers already match on.
var tcpIPEvents = newFamily("Tcplp", provider.TcpIP).
	op(10, "SendIPV4", versions{2: tcpSendV2}).
	op(11, "RecvIPV4", versions{2: tcpV2}).
	op(12, "ConnectIPV4", versions{2: tcpConnectV2}).
	op(13, "DisconnectIPV4", versions{2: tcpV2}).
	op(14, "RetransmitIPV4", versions{2: tcpV2}).
	op(18, "TCPCopyIPV4", versions{2: tcpV2})
