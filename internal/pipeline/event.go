package pipeline

// Stage names, in execution order.
const (
	StageInterpret  = "interpret"
	StageRetrieve   = "retrieve"
	StageSynthesize = "synthesize"
)

// Event is the closed set of engine lifecycle events. The unexported marker
// keeps the set sealed so consumers can switch exhaustively instead of
// matching strings.
type Event interface {
	isEvent()
}

// StageStarted fires before a stage runs.
type StageStarted struct {
	Stage string
}

// StageCompleted fires after a stage succeeds. Update is the stage's own
// output snapshot; State is the merged state after applying it.
type StageCompleted struct {
	Stage  string
	Update Update
	State  State
}

// StageFailed fires when a stage faults. No further stages run after it.
type StageFailed struct {
	Stage string
	Err   error
}

// TokenEmitted fires once per incremental text fragment during the
// synthesize stage, always before that stage's StageCompleted.
type TokenEmitted struct {
	Text string
}

// RunFinished is always the last event, on success and on early stop alike.
type RunFinished struct {
	Final State
}

func (StageStarted) isEvent()   {}
func (StageCompleted) isEvent() {}
func (StageFailed) isEvent()    {}
func (TokenEmitted) isEvent()   {}
func (RunFinished) isEvent()    {}
