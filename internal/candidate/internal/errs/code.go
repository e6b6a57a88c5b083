package errs

var (
	SystemError       = ErrorCode{Code: 512001, Msg: "系统错误"}
	CandidateNotFound = ErrorCode{Code: 512002, Msg: "候选人不存在"}
	InvalidTransition = ErrorCode{Code: 512003, Msg: "当前状态不允许该操作"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
