package synth

// FMOpCount is the fixed number of FM operators per voice.
const FMOpCount = 4

// FMAlgorithmCount and FMFeedbackCount mirror the original tracker's
// fixed-size algorithm and feedback-topology tables.
const (
	FMAlgorithmCount  = 13
	FMFeedbackCount   = 18
	FMFreqRatioCount  = 35
)

// fmAlgorithm describes one of the 13 fixed operator topologies:
// Modulators[op] lists the operators whose current output is summed
// into op's phase before it is evaluated, and Carriers lists the
// operators whose output is summed into the voice's final sample.
type fmAlgorithm struct {
	Modulators [FMOpCount][]int
	Carriers   []int
}

// fmAlgorithms reproduces the tracker's 13-entry algorithm table
// verbatim (operator numbering translated from the original's 1-based
// comments to 0-based slice indices).
var fmAlgorithms = [FMAlgorithmCount]fmAlgorithm{
	{Modulators: [4][]int{{1, 2, 3}, nil, nil, nil}, Carriers: []int{0}},             // 0:  1 <- (2 3 4)
	{Modulators: [4][]int{{1, 2}, nil, {3}, nil}, Carriers: []int{0}},                // 1:  1 <- (2 3 <- 4)
	{Modulators: [4][]int{{1}, {2, 3}, nil, nil}, Carriers: []int{0}},                // 2:  1 <- 2 <- (3 4)
	{Modulators: [4][]int{{1, 2}, {3}, {3}, nil}, Carriers: []int{0}},                // 3:  1 <- (2 3) <- 4
	{Modulators: [4][]int{{1}, {2}, {3}, nil}, Carriers: []int{0}},                   // 4:  1 <- 2 <- 3 <- 4
	{Modulators: [4][]int{{2}, {3}, nil, nil}, Carriers: []int{0, 1}},                // 5:  1 <- 3  2 <- 4
	{Modulators: [4][]int{nil, {2, 3}, nil, nil}, Carriers: []int{0, 1}},             // 6:  1  2 <- (3 4)
	{Modulators: [4][]int{nil, {2}, {3}, nil}, Carriers: []int{0, 1}},                // 7:  1  2 <- 3 <- 4
	{Modulators: [4][]int{{2}, {2}, {3}, nil}, Carriers: []int{0, 1}},                // 8:  (1 2) <- 3 <- 4
	{Modulators: [4][]int{{2, 3}, {2, 3}, nil, nil}, Carriers: []int{0, 1}},          // 9:  (1 2) <- (3 4)
	{Modulators: [4][]int{nil, nil, {3}, nil}, Carriers: []int{0, 1, 2}},             // 10: 1  2  3 <- 4
	{Modulators: [4][]int{{3}, {3}, {3}, nil}, Carriers: []int{0, 1, 2}},             // 11: (1 2 3) <- 4
	{Modulators: [4][]int{nil, nil, nil, nil}, Carriers: []int{0, 1, 2, 3}},          // 12: 1  2  3  4
}

// fmFeedbackLink is one self- or cross-operator feedback path: the
// previous sample of Source is scaled by the feedback-amount
// parameter and added into Target's phase.
type fmFeedbackLink struct {
	Source, Target int
}

// fmFeedbackTopologies reproduces the tracker's 18-entry feedback
// table: "G" entries are self-feedback, "A -> B" entries route one
// operator's prior output into another's phase.
var fmFeedbackTopologies = [FMFeedbackCount][]fmFeedbackLink{
	{{0, 0}},                                 // 0:  1 G
	{{1, 1}},                                 // 1:  2 G
	{{2, 2}},                                 // 2:  3 G
	{{3, 3}},                                 // 3:  4 G
	{{0, 0}, {1, 1}},                         // 4:  1 G  2 G
	{{2, 2}, {3, 3}},                         // 5:  3 G  4 G
	{{0, 0}, {1, 1}, {2, 2}},                 // 6:  1 G  2 G  3 G
	{{1, 1}, {2, 2}, {3, 3}},                 // 7:  2 G  3 G  4 G
	{{0, 0}, {1, 1}, {2, 2}, {3, 3}},         // 8:  1 G  2 G  3 G  4 G
	{{0, 1}},                                 // 9:  1 -> 2
	{{0, 2}},                                 // 10: 1 -> 3
	{{0, 3}},                                 // 11: 1 -> 4
	{{1, 2}},                                 // 12: 2 -> 3
	{{1, 3}},                                 // 13: 2 -> 4
	{{2, 3}},                                 // 14: 3 -> 4
	{{0, 2}, {1, 3}},                         // 15: 1 -> 3  2 -> 4
	{{0, 3}, {1, 2}},                         // 16: 1 -> 4  2 -> 3
	{{0, 1}, {1, 2}, {2, 3}},                 // 17: 1 -> 2 -> 3 -> 4
}

// fmFreqRatio is one entry of the per-operator frequency ratio table:
// the operator's frequency is key_to_hz(key + carrier_interval) *
// Mult * AmplitudeSign + HzOffset * AmplitudeSign. AmplitudeSign of -1
// together with a nonzero HzOffset produces a slow beating pair.
type fmFreqRatio struct {
	Mult          float64
	HzOffset      float64
	AmplitudeSign float64
}

// fmFreqRatios reproduces the tracker's 35-entry frequency ratio
// table verbatim, including the later "ultrabox"/"dogebox"/"slarmoo's
// box" community extensions the original carries.
var fmFreqRatios = [FMFreqRatioCount]fmFreqRatio{
	{0.125, 0.0, 1.0},
	{0.25, 0.0, 1.0},
	{0.5, 0.0, 1.0},
	{0.75, 0.0, 1.0},
	{1.0, 0.0, 1.0},
	{1.0, 1.5, -1.0},
	{2.0, 0.0, 1.0},
	{2.0, -1.3, -1.0},
	{3.0, 0.0, 1.0},
	{3.5, -0.05, 1.0},
	{4.0, 0.0, 1.0},
	{4.0, -2.4, -1.0},
	{5.0, 0.0, 1.0},
	{6.0, 0.0, 1.0},
	{7.0, 0.0, 1.0},
	{8.0, 0.0, 1.0},
	{9.0, 0.0, 1.0},
	{10.0, 0.0, 1.0},
	{11.0, 0.0, 1.0},
	{12.0, 0.0, 1.0},
	{13.0, 0.0, 1.0},
	{14.0, 0.0, 1.0},
	{15.0, 0.0, 1.0},
	{16.0, 0.0, 1.0},
	{17.0, 0.0, 1.0},
	{18.0, 0.0, 1.0},
	{19.0, 0.0, 1.0},
	{20.0, 0.0, 1.0},
	{20.0, -5.0, -1.0},
	{25.0, 0.0, 1.0},
	{50.0, 0.0, 1.0},
	{75.0, 0.0, 1.0},
	{100.0, 0.0, 1.0},
	{128.0, 0.0, 1.0},
	{250.0, 0.0, 1.0},
}
