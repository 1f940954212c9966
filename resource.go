// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csvrow

import "errors"

// Bracket provides scoped ownership of a resource: acquire → use → release.
//
// release runs exactly once whenever acquire succeeded, whether use
// returns a value, a structured failure, a fault, or panics. A Left from
// acquire is returned without calling use or release.
//
// A release error is a fault and is joined with any fault from use.
func Bracket[E, R, A any](
	acquire func() (Either[E, R], error),
	release func(R) error,
	use func(R) (Either[E, A], error),
) (result Either[E, A], err error) {
	acquired, err := acquire()
	if err != nil {
		return result, err
	}
	resource, isRight := acquired.GetRight()
	if !isRight {
		e, _ := acquired.GetLeft()
		return Left[E, A](e), nil
	}
	defer func() {
		if rerr := release(resource); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()
	return use(resource)
}
