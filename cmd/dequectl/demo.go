package main

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/lucasgdosr/deque/v2"
)

// traced logs its own copies and destruction.
type traced struct {
	n   int
	log logrus.FieldLogger
}

func (t traced) Copy() (traced, error) {
	t.log.WithField("value", t.n).Debug("copy")
	return t, nil
}

func (t traced) Destroy() {
	t.log.WithField("value", t.n).Debug("destroy")
}

func (t traced) String() string { return strconv.Itoa(t.n) }

func runDemo(log logrus.FieldLogger) error {
	d := deque.New[traced]()
	defer d.Destroy()

	step := func(what string) {
		log.WithFields(logrus.Fields{
			"len":   d.Len(),
			"cap":   d.Cap(),
			"deque": d.String(),
		}).Info(what)
	}

	for i := 1; i <= 5; i++ {
		if err := d.PushBack(traced{i, log}); err != nil {
			return err
		}
	}
	step("pushed 1..5")

	d.PopFront()
	step("popped front")

	for _, n := range []int{200, 300} {
		if err := d.PushBack(traced{n, log}); err != nil {
			return err
		}
	}
	step("pushed 200, 300")

	if _, err := d.Insert(d.CBegin().Add(2), traced{5, log}); err != nil {
		return err
	}
	step("inserted 5 at 2")

	d.Erase(d.CBegin().Add(2))
	step("erased at 2")

	c, err := d.Copy()
	if err != nil {
		return err
	}
	defer c.Destroy()
	if err := c.PushFront(traced{0, log}); err != nil {
		return err
	}
	log.WithField("copy", c.String()).Info("copy isolated from source")

	deque.Swap(d, c)
	step("swapped with copy")
	return nil
}
