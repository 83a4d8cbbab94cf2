package db

import (
	"strconv"

	"github.com/mwhitford/fretwork/constants"
	"github.com/mwhitford/fretwork/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// GetCustomShapes scans the shapes table for community-contributed chord
// shapes. Items look like {PK: chord name, Variants: list of 6-number fret
// lists, -1 for a muted string}. Returns an empty map when the table is not
// configured.
func GetCustomShapes() map[string][]model.Shape {
	res := make(map[string][]model.Shape)

	table := constants.GetShapesTable()
	if table == "" {
		return res
	}

	config := aws.Config{}
	if endpoint := constants.GetDynamoEndpoint(); endpoint != "" {
		config.Region = aws.String("localhost")
		config.Endpoint = &endpoint
	}
	sess, err := session.NewSession(&config)
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	client := dynamodb.New(sess)
	input := &dynamodb.ScanInput{TableName: aws.String(table)}
	out, err := client.Scan(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, item := range out.Items {
		if item["PK"] == nil || item["PK"].S == nil || item["Variants"] == nil {
			continue
		}
		name := *item["PK"].S

		var variants []model.Shape
		for _, v := range item["Variants"].L {
			if len(v.L) != model.NumStrings {
				continue
			}
			var shape model.Shape
			ok := true
			for i, fret := range v.L {
				if fret.N == nil {
					ok = false
					break
				}
				n, err := strconv.Atoi(*fret.N)
				if err != nil {
					ok = false
					break
				}
				shape[i] = n
			}
			if ok {
				variants = append(variants, shape)
			}
		}
		if len(variants) > 0 {
			res[name] = variants
		}
	}

	return res
}
