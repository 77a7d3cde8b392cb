package quickextest

import quickex "github.com/supreme2580/QiuckEx"

type Handler struct {
	checkCall   int
	CheckResult quickex.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult quickex.DeliverResult
	DeliverErr    error
}

var _ quickex.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx) (*quickex.CheckResult, error) {
	h.checkCall++
	return &h.CheckResult, h.CheckErr
}

func (h *Handler) Deliver(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx) (*quickex.DeliverResult, error) {
	h.deliverCall++
	return &h.DeliverResult, h.DeliverErr
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
