package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/weegigs/wee-counter-go/connectors/welambda"
	"github.com/weegigs/wee-counter-go/counter"
)

func main() {
	lambda.Start(welambda.NewHandler(counter.PseudoRandomizer()))
}
