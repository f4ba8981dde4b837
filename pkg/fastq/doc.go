// Package fastq renders fragments as four-line read records.
//
// Each fragment at 1-based position i becomes:
//
//	@READ_i
//	<bases>
//	+READ_i
//	<qualities>
//
// There is no header, footer or escaping. Records are written in fragment
// order through a buffered [Writer]:
//
//	w := fastq.NewWriter(os.Stdout)
//	for _, f := range run.Fragments {
//	    if err := w.WriteFragment(f); err != nil {
//	        return err
//	    }
//	}
//	return w.Flush()
package fastq
