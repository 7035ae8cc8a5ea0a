// codegen generates unique random codes and checks code lists for duplicates
package main

import "codegen/cmd"

func main() {
	cmd.Execute()
}
