package errs

var (
	SystemError  = ErrorCode{Code: 513001, Msg: "系统错误"}
	InvalidInput = ErrorCode{Code: 513002, Msg: "非法输入"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
