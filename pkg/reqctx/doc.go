// Package reqctx carries request-scoped metadata through context.Context.
//
// HTTP middleware attaches a RequestMeta to every request context; services
// read it back to correlate log lines:
//
//	log := reqctx.Logger(ctx, s.log)
//	log.InfoContext(ctx, "entry stored")
//
// Context keys are unexported so only this package can set them.
package reqctx
