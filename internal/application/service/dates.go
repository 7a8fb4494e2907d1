package service

import "time"

// Business dates follow Philippine time (UTC+8) regardless of server
// timezone, matching what the registers report.
var manila = time.FixedZone("Asia/Manila", 8*60*60)

// today returns the current business date as YYYY-MM-DD.
func today() string {
	return time.Now().In(manila).Format("2006-01-02")
}

// daysAgo returns the business date n days before today as YYYY-MM-DD.
func daysAgo(n int) string {
	return time.Now().In(manila).AddDate(0, 0, -n).Format("2006-01-02")
}
