package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	forbiddenResult = ginx.Result{
		Code: errs.Forbidden.Code,
		Msg:  errs.Forbidden.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.NotFound.Code,
		Msg:  errs.NotFound.Msg,
	}
	noAvailabilityResult = ginx.Result{
		Code: errs.NoAvailability.Code,
		Msg:  errs.NoAvailability.Msg,
	}
	stageNotAllowedResult = ginx.Result{
		Code: errs.StageNotAllowed.Code,
		Msg:  errs.StageNotAllowed.Msg,
	}
	concurrentModifyResult = ginx.Result{
		Code: errs.ConcurrentModify.Code,
		Msg:  errs.ConcurrentModify.Msg,
	}
	offerRespondedResult = ginx.Result{
		Code: errs.OfferResponded.Code,
		Msg:  errs.OfferResponded.Msg,
	}
)
