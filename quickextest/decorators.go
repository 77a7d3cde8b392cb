package quickextest

import quickex "github.com/supreme2580/QiuckEx"

// Decorator is a mock implementation of the quickex.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding method.
// If error attributes are not set then wrapped handler method is called and
// its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ quickex.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx, next quickex.Checker) (*quickex.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return &quickex.CheckResult{}, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx, next quickex.Deliverer) (*quickex.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return &quickex.DeliverResult{}, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate wraps the handler with a single decorator and returns
// them as a combined handler.
func Decorate(h quickex.Handler, d quickex.Decorator) quickex.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn quickex.Handler
	dc quickex.Decorator
}

var _ quickex.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx) (*quickex.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx) (*quickex.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
