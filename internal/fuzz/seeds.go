package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB
)

var inlineSeeds = []string{
	"",
	"module m(input a, output b); endmodule",
	"class c extends base; function void f(int x); x; endfunction endclass",
	"module m; logic [7:0] a, b; endmodule",
	"module m; always_ff @(posedge clk) if (rst) a <= 0; endmodule",
	"module m; endmodul",
	"module m; always_comb case (sel) 2'b0?: y = 1; default: y = 0; endcase endmodule",
	"module m #(parameter W = 8) (input logic [W-1:0] d); initial begin : b $display(\"x\"); end endmodule",
	"/* unterminated",
	"\"unterminated string",
	"begin begin begin end",
	"if (((((",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "parser", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// every *.sv file under the parser testdata becomes a seed
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".sv" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
