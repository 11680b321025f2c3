/*
 * UOSTEAM
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package cli

import "github.com/krotik/uosteam/util"

/*
newEngineLogger builds the Logger an engine.New call should use for the
"run"/"console" commands' --log-level flag: empty (the default) means no
engine lifecycle logging at all, anything else is filtered through
util.LogLevelLogger on top of a util.StdOutLogger.
*/
func newEngineLogger(level string) (util.Logger, error) {
	if level == "" {
		return util.NewNullLogger(), nil
	}
	return util.NewLogLevelLogger(util.NewStdOutLogger(), level)
}
