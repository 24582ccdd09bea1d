package hashtab

import "github.com/sirupsen/logrus"

// Option configures a Table at creation.
type Option func(*Table)

// WithLogger sets the logger used for creation warnings. The default is
// logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(t *Table) {
		if l != nil {
			t.log = l
		}
	}
}
