package scoring

import (
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
)

var interestReasons = []string{
	"the role aligns closely with the skills I have been building",
	"the team works on problems I want to grow into",
	"the company's direction matches where I want to take my career",
	"the position offers the kind of ownership I am looking for",
}

// InterestLine picks among the canned phrasings by hashing the pair of IDs,
// so repeated generations for the same candidate and opportunity stay stable.
// It is presentation text only and is never consulted by the ranking path.
func InterestLine(candidateID, opportunityID uuid.UUID, company string) string {
	h := fnv.New32a()
	h.Write(candidateID[:])
	h.Write(opportunityID[:])
	reason := interestReasons[h.Sum32()%uint32(len(interestReasons))]

	if company == "" {
		return fmt.Sprintf("I am excited to apply because %s.", reason)
	}
	return fmt.Sprintf("I am excited to apply to %s because %s.", company, reason)
}
