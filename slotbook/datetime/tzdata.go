//go:build slotbook_tzdata

package datetime

import _ "time/tzdata"
