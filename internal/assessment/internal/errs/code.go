package errs

var (
	SystemError          = ErrorCode{Code: 513001, Msg: "系统错误"}
	TestNotFound         = ErrorCode{Code: 513002, Msg: "测评或者考试记录不存在"}
	AttemptFinalized     = ErrorCode{Code: 513003, Msg: "考试已出最终结果，以原结果为准"}
	InvalidAnswer        = ErrorCode{Code: 513004, Msg: "答卷里有不属于这份测评的题目"}
	CandidateNotFound    = ErrorCode{Code: 513005, Msg: "先完善候选人档案再参加考试"}
	AttemptNotReviewable = ErrorCode{Code: 513006, Msg: "考试还没有提交，不能批改"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
