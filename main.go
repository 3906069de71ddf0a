package main

import "github.com/SiyiZhang00/wheels-of-fortune/cmd"

func main() {
	cmd.Execute()
}
