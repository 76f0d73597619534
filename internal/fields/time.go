package fields

// SystemTime decodes a SYSTEMTIME.
func (d *Decoder) SystemTime(name string) {
	d.Struct(name, func(st *Decoder) {
		st.Short("wYear")
		st.Short("wMonth")
		st.Short("wDayOfWeek")
		st.Short("wDay")
		st.Short("wHour")
		st.Short("wMinute")
		st.Short("wSecond")
		st.Short("wMilliseconds")
	})
}

// timeZoneNameLength is the WCHAR count of TIME_ZONE_INFORMATION names.
const timeZoneNameLength = 32

// TimeZoneInformation decodes a TIME_ZONE_INFORMATION.
func (d *Decoder) TimeZoneInformation(name string) {
	d.Struct(name, func(tz *Decoder) {
		tz.Int("Bias")
		tz.FixedWString("StandardName", timeZoneNameLength)
		tz.SystemTime("StandardDate")
		tz.Int("StandardBias")
		tz.FixedWString("DaylightName", timeZoneNameLength)
		tz.SystemTime("DaylightDate")
		tz.Int("DaylightBias")
	})
}
