package main

var (
	Version = "0.2.0"
)
