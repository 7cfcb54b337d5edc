package errs

var (
	SystemError      = ErrorCode{Code: 512001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 512002, Msg: "非法输入"}
	Forbidden        = ErrorCode{Code: 512003, Msg: "无权限操作"}
	NotFound         = ErrorCode{Code: 512004, Msg: "投递、面试或 offer 不存在"}
	NoAvailability   = ErrorCode{Code: 512005, Msg: "没有任何可面试时段"}
	StageNotAllowed  = ErrorCode{Code: 512006, Msg: "当前阶段不允许该操作"}
	ConcurrentModify = ErrorCode{Code: 512007, Msg: "操作冲突，请重试"}
	OfferResponded   = ErrorCode{Code: 512008, Msg: "offer 已被回应"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
