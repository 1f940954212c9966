// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command csvrow parses a people file (id,name,birthdate per line) and
// prints one record per line, or the failure that stopped it.
package main

import (
	"os"

	"code.hybscloud.com/csvrow/cmd/csvrow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
