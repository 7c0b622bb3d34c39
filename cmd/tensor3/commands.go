package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/born-ml/tensor3/internal/config"
	"github.com/born-ml/tensor3/internal/demo"
	"github.com/born-ml/tensor3/internal/render"
	"github.com/born-ml/tensor3/internal/tensor"
)

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "tensor3",
		Short: "tensor3 - small rank 1-3 numeric arrays",
		Long: `tensor3 builds, combines and prints rank 1-3 float64 tensors.

Run 'tensor3 examples' for the walkthrough.
Run 'tensor3 forward' for a two-layer forward pass on random data.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			setupLogging(cmd.ErrOrStderr(), cfg)
			tensor.SetParallelism(cfg.ParallelOptions())
			tensor.SetBLASThreshold(cfg.MatMul.BLASThreshold)
			slog.Debug("configuration loaded",
				"workers", cfg.Parallel.Workers,
				"parallel", cfg.Parallel.Enabled,
				"blas_threshold", cfg.MatMul.BLASThreshold)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")

	rootCmd.AddCommand(
		versionCmd(),
		examplesCmd(),
		forwardCmd(),
		showCmd(),
	)
	return rootCmd
}

func setupLogging(w io.Writer, cfg *config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "tensor3 %s\n", version)
			return err
		},
	}
}

func examplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples [number...]",
		Short: "Run the numbered walkthrough (all steps by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios := demo.Scenarios()
			if len(args) > 0 {
				scenarios = nil
				for _, arg := range args {
					n, err := strconv.Atoi(arg)
					if err != nil {
						return fmt.Errorf("invalid example number %q: %w", arg, err)
					}
					s, ok := demo.Lookup(n)
					if !ok {
						return fmt.Errorf("unknown example %d (valid: 1-%d)", n, len(demo.Scenarios()))
					}
					scenarios = append(scenarios, s)
				}
			}

			out := cmd.OutOrStdout()
			for _, s := range scenarios {
				fmt.Fprintf(out, "Example %02d: %s\n", s.Number, s.Title)
				if err := s.Run(out); err != nil {
					return fmt.Errorf("example %d: %w", s.Number, err)
				}
			}
			return nil
		},
	}
}

func forwardCmd() *cobra.Command {
	cfg := demo.DefaultForwardConfig()
	var table bool

	cmd := &cobra.Command{
		Use:   "forward",
		Short: "Run a two-layer forward pass on random data",
		Long: `Builds a Batch×Height×Width input, flattens it with a view, and applies
matmul + bias + ReLU followed by matmul + bias + Sigmoid.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()
			out, err := demo.Forward(cfg)
			if err != nil {
				return err
			}
			slog.Info("forward pass complete", "shape", out.Shape(), "elapsed", time.Since(start))

			if table {
				return render.Table(cmd.OutOrStdout(), out)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVar(&cfg.Batch, "batch", cfg.Batch, "number of input samples")
	cmd.Flags().IntVar(&cfg.Height, "height", cfg.Height, "input rows per sample")
	cmd.Flags().IntVar(&cfg.Width, "width", cfg.Width, "input columns per sample")
	cmd.Flags().IntVar(&cfg.Hidden, "hidden", cfg.Hidden, "hidden layer units")
	cmd.Flags().IntVar(&cfg.Out, "out", cfg.Out, "output layer units")
	cmd.Flags().Float64Var(&cfg.Low, "low", cfg.Low, "lower bound of random values")
	cmd.Flags().Float64Var(&cfg.High, "high", cfg.High, "upper bound of random values (exclusive)")
	cmd.Flags().BoolVar(&table, "table", false, "render the output as a table")

	return cmd
}

func showCmd() *cobra.Command {
	var (
		shape []int
		start float64
		table bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a tensor of consecutive values with the given shape",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := tensor.Shape(shape)
			if err := s.Validate(); err != nil {
				return err
			}
			values := make([]float64, s.NumElements())
			for i := range values {
				values[i] = start + float64(i)
			}
			t, err := tensor.New(s, values)
			if err != nil {
				return err
			}

			if table {
				return render.Table(cmd.OutOrStdout(), t)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), t)
			return err
		},
	}

	cmd.Flags().IntSliceVar(&shape, "shape", []int{3, 4}, "tensor shape (1 to 3 dimensions)")
	cmd.Flags().Float64Var(&start, "start", 0, "first value")
	cmd.Flags().BoolVar(&table, "table", false, "render as a table")

	return cmd
}
