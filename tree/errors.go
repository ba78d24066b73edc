/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package tree

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/bbva/bintree/metrics"
)

var (
	// ErrInvalidCursorAdvance is returned when a cursor that is not
	// positioned at a node is asked to move, to be converted or to
	// drive a deletion.
	ErrInvalidCursorAdvance = errors.New("invalid cursor advance")

	// ErrInvalidCursorDereference is returned when reading the value of
	// a cursor that is not positioned at a node.
	ErrInvalidCursorDereference = errors.New("invalid cursor dereference")
)

func errAdvance(op string, c fmt.Stringer) error {
	return errAdvancef("%s on %v", op, c)
}

// errAdvancef counts an advance-class violation and wraps
// ErrInvalidCursorAdvance with the given message.
func errAdvancef(format string, args ...interface{}) error {
	metrics.BintreeContractViolationsTotal.WithLabelValues(metrics.KindAdvance).Inc()
	return errors.Wrapf(ErrInvalidCursorAdvance, format, args...)
}

func errDereference(c fmt.Stringer) error {
	metrics.BintreeContractViolationsTotal.WithLabelValues(metrics.KindDereference).Inc()
	return errors.Wrapf(ErrInvalidCursorDereference, "value of %v", c)
}
