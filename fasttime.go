package recfmt

// Calendar components are assembled with direct digit appends instead of
// time.Format. The fast paths only handle years 0..9999 and zone offsets
// within ±18h; the time cache falls back to time.Format outside those
// ranges.

const maxZoneOffset = 18 * 3600

func appendTwoDigits(buf []byte, value int) []byte {
	buf = append(buf, byte('0'+value/10))
	buf = append(buf, byte('0'+value%10))
	return buf
}

func appendFourDigits(buf []byte, v int) []byte {
	buf = appendTwoDigits(buf, v/100)
	buf = appendTwoDigits(buf, v%100)
	return buf
}

// appendOffsetColon renders a zone offset in seconds as ±hh:mm, dropping any
// sub-minute component the zone database may carry.
func appendOffsetColon(buf []byte, offset int) []byte {
	if offset < 0 {
		buf = append(buf, '-')
		offset = -offset
	} else {
		buf = append(buf, '+')
	}
	buf = appendTwoDigits(buf, offset/3600)
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, (offset%3600)/60)
	return buf
}
