// gmsctl inspects Glacier scene archives: entity tables, type
// databases, and fully loaded scene trees.
package main

func main() {
	execute()
}
