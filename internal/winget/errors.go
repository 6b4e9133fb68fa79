package winget

// Status codes winget commonly returns for Store installs.
const (
	StatusAccessDenied    uint32 = 0x80070005
	StatusCancelled       uint32 = 0x800704C7
	StatusNotFound        uint32 = 0x80073CF3
	StatusInstallInFlight uint32 = 0x80073D02
	StatusInvalidArgument uint32 = 0x80070057
)

// ErrorTable maps winget status codes to friendly explanations. The zero
// value is an empty table; it is never modified after NewErrorTable.
type ErrorTable struct {
	m map[uint32]string
}

// NewErrorTable returns the table of known Store install failures.
func NewErrorTable() ErrorTable {
	return ErrorTable{m: map[uint32]string{
		StatusAccessDenied:    "Access denied. Try running as Administrator.",
		StatusCancelled:       "Operation canceled. The install may have been aborted.",
		StatusNotFound:        "Package not found in msstore source. Check the ID/URL.",
		StatusInstallInFlight: "Another install is in progress. Wait for it to finish.",
		StatusInvalidArgument: "Invalid argument. Verify the Store ID or URL.",
	}}
}

// Lookup returns the explanation for status, if known.
func (t ErrorTable) Lookup(status uint32) (string, bool) {
	msg, ok := t.m[status]
	return msg, ok
}

// Len returns the number of known codes.
func (t ErrorTable) Len() int { return len(t.m) }

// Status reinterprets a process exit code as a 32-bit HRESULT-style value.
// The conversion keeps the low 32 bits, so -2147024891 and 2147942405 both
// map to 0x80070005.
func Status(code int) uint32 {
	return uint32(int32(code))
}

// Signed returns code as the signed 32-bit value winget reported.
func Signed(code int) int32 {
	return int32(code)
}
