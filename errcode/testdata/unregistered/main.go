// Command unregistered must not compile: color has no ErrorCode method, so it
// is not a registered enum.
package main

import "codeberg.org/mutker/errcode/errcode/syscode"

type color int

const red color = 1

func main() {
	_ = syscode.FromEnum(red)
}
