package sim

// PenaltyCode pairs a scoreboard code letter with the infractions it covers.
type PenaltyCode struct {
	Code        string
	Description string
}

// CutPenaltyCode is recorded when a skater re-enters the track illegally.
const CutPenaltyCode = "X"

// UnknownPenaltyCode is recorded when no code stream is configured.
const UnknownPenaltyCode = "?"

// PenaltyCodes is the scoreboard's code table, in display order.
var PenaltyCodes = []PenaltyCode{
	{"A", "High Block"},
	{"B", "Back Block"},
	{"C", "Illegal Contact,Illegal Assist,OOP Block,Early/Late Hit"},
	{"D", "Direction,Stop Block"},
	{"E", "Leg Block"},
	{"F", "Forearm"},
	{"G", "Misconduct,Insubordination"},
	{"H", "Head Block"},
	{"I", "Illegal Procedure,Star Pass Violation,Pass Interference"},
	{"L", "Low Block"},
	{"M", "Multiplayer"},
	{"N", "Interference,Delay Of Game"},
	{"P", "Illegal Position,Destruction,Skating OOB,Failure to..."},
	{CutPenaltyCode, "Cut,Illegal Re-Entry"},
}

// drawPenaltyCode picks an on-track infraction code from the code stream.
func (m *Match) drawPenaltyCode() string {
	if m.codes == nil {
		return UnknownPenaltyCode
	}
	// The cut code is reserved for illegal re-entry from the box.
	return PenaltyCodes[m.codes.IntN(len(PenaltyCodes)-1)].Code
}
