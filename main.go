package main

import "github.com/assettoken/asset-token/cmd"

func main() {
	cmd.Execute()
}
