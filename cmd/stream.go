package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/mlev/payrec"
	"github.com/mlev/payrec/events"
	"github.com/mlev/payrec/events/kafka"
)

type streamCmd struct {
	brokers string
	topic   string
}

func (*streamCmd) Name() string     { return "stream" }
func (*streamCmd) Synopsis() string { return "process a transactions file and publish audit events" }
func (*streamCmd) Usage() string {
	return `plq stream [-brokers <host:port,...>] [-topic <name>] <transactions.csv>

  Applies every transaction in input order and publishes one audit event per
  transaction to a Kafka topic, preserving the input order.
`
}

func (c *streamCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.brokers, "brokers", envOr("PAYREC_BROKERS", "localhost:9092"), "Comma-separated Kafka broker addresses.")
	f.StringVar(&c.topic, "topic", envOr("PAYREC_TOPIC", "payrec.audit"), "Kafka topic for audit events.")
}

func (c *streamCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	transactions, err := decodeTransactions(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	publisher := kafka.NewPublisher(strings.Split(c.brokers, ","), c.topic)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Println("warning, could not close publisher:", err)
		}
	}()

	status := publishAudit(ctx, publisher, c.topic, transactions)
	if status != subcommands.ExitSuccess {
		return status
	}

	fmt.Fprintf(os.Stderr, "published %d audit events to %s\n", len(transactions), c.topic)
	return subcommands.ExitSuccess
}

// publishAudit processes the transactions and publishes one event per
// outcome, in input order.
func publishAudit(ctx context.Context, publisher events.Publisher, topic string, transactions []payrec.Transaction) subcommands.ExitStatus {
	p := payrec.NewProcessor()

	seq := 0
	for record := range p.Process(transactions) {
		event := events.NewAuditEvent(seq+1, transactions[seq], record)
		if err := publisher.Publish(ctx, topic, event); err != nil {
			fmt.Fprintf(os.Stderr, "error publishing event %d: %v\n", event.Seq, err)
			return subcommands.ExitFailure
		}
		seq++
	}

	return subcommands.ExitSuccess
}
