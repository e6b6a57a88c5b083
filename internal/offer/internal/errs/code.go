package errs

var (
	SystemError       = ErrorCode{Code: 514001, Msg: "系统错误"}
	OfferNotFound     = ErrorCode{Code: 514002, Msg: "offer 不存在"}
	OfferResponded    = ErrorCode{Code: 514003, Msg: "offer 已经有回复了"}
	OfferUnauthorized = ErrorCode{Code: 514004, Msg: "没有权限操作这份 offer"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
