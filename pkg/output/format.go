// Package output provides utilities for formatting and displaying repayment
// schedules.
package output

import (
	"fmt"
	"io"

	"github.com/kopaflow/loan-engine/pkg/datetime"
	"github.com/kopaflow/loan-engine/pkg/format"
	"github.com/kopaflow/loan-engine/pkg/loan"
)

// PrettySchedule writes a human-readable rather than machine-readable table.
func PrettySchedule(w io.Writer, entries []loan.ScheduleEntry) {
	fmt.Fprintf(w, "# | Due date   | Principal       | Interest        | Total           | Outstanding after\n")
	fmt.Fprintf(w, "_ | ________   | _________       | ________        | _____           | _________________\n")
	for _, entry := range entries {
		fmt.Fprintf(w, "%d | %s | %s | %s | %s | %s\n",
			entry.InstallmentNumber,
			entry.DueDate.Format(datetime.DateLayout),
			format.Money(entry.DuePrincipal),
			format.Money(entry.DueInterest),
			format.Money(entry.DueTotal),
			format.Money(entry.OutstandingPrincipalAfter),
		)
	}
}

// CsvSchedule writes in comma-separated value format.
func CsvSchedule(w io.Writer, entries []loan.ScheduleEntry) {
	fmt.Fprintf(w, `"installment","due_date","due_principal","due_interest","due_total","outstanding_after","status"`)
	fmt.Fprintf(w, "\n")
	for _, entry := range entries {
		fmt.Fprintf(w, `"%d","%s","%.2f","%.2f","%.2f","%.2f","%s"`,
			entry.InstallmentNumber,
			entry.DueDate.Format(datetime.DateLayout),
			entry.DuePrincipal,
			entry.DueInterest,
			entry.DueTotal,
			entry.OutstandingPrincipalAfter,
			entry.Status,
		)
		fmt.Fprintf(w, "\n")
	}
}
