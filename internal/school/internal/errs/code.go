package errs

var (
	SystemError  = ErrorCode{Code: 514001, Msg: "系统错误"}
	InvalidInput = ErrorCode{Code: 514002, Msg: "非法输入"}
	Forbidden    = ErrorCode{Code: 514003, Msg: "无权限操作"}
	NotFound     = ErrorCode{Code: 514004, Msg: "学校或岗位不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
