package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/spoolworks/internal/core/workorder"
	"github.com/example/spoolworks/internal/ports/primary"
	"github.com/example/spoolworks/internal/wire"
)

var workOrderCmd = &cobra.Command{
	Use:   "workorder",
	Short: "Manage work orders (production jobs)",
	Long:  "Compose, list, and track work orders for production runs",
}

var workOrderCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Compose a new work order (customer + header + spools + spec)",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := buildCreateRequest(cmd)
		if err != nil {
			return err
		}
		return wire.WorkOrderAdapter().Create(cmd.Context(), *req)
	},
}

var workOrderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List work orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.WorkOrderAdapter().List(cmd.Context())
	},
}

var workOrderShowCmd = &cobra.Command{
	Use:   "show [work-order-id]",
	Short: "Show work order details with production report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseWorkOrderID(args[0])
		if err != nil {
			return err
		}
		return wire.WorkOrderAdapter().Show(cmd.Context(), id)
	},
}

var workOrderReportCmd = &cobra.Command{
	Use:   "report [work-order-id]",
	Short: "Show the production report (efficiency, tolerances, run time)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseWorkOrderID(args[0])
		if err != nil {
			return err
		}
		return wire.WorkOrderAdapter().Report(cmd.Context(), id)
	},
}

var workOrderStatusCmd = &cobra.Command{
	Use:   "status [work-order-id] [pending|in_progress|completed|cancelled]",
	Short: "Transition a work order to a new status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseWorkOrderID(args[0])
		if err != nil {
			return err
		}
		status, err := workorder.ParseStatus(args[1])
		if err != nil {
			return err
		}
		return wire.WorkOrderAdapter().UpdateStatus(cmd.Context(), id, status)
	},
}

func parseWorkOrderID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid work order id %q", raw)
	}
	return id, nil
}

func buildCreateRequest(cmd *cobra.Command) (*primary.CreateWorkOrderRequest, error) {
	flags := cmd.Flags()

	req := &primary.CreateWorkOrderRequest{}
	req.Customer.Name, _ = flags.GetString("customer")
	req.Customer.CompanyName, _ = flags.GetString("company")
	req.Customer.Email, _ = flags.GetString("email")
	req.Customer.Phone, _ = flags.GetString("phone")

	req.Order.OrderDate, _ = flags.GetString("order-date")
	req.Order.DeliveryDate, _ = flags.GetString("delivery-date")
	req.Order.ReferenceNumber, _ = flags.GetString("reference")
	req.Order.TotalOrderWeight, _ = flags.GetFloat64("weight")
	req.Order.TotalOrderLength, _ = flags.GetFloat64("length")
	req.Order.ProductType, _ = flags.GetString("product")
	req.Order.MaterialType, _ = flags.GetString("material")
	req.Order.Width, _ = flags.GetFloat64("width")
	req.Order.Thickness, _ = flags.GetFloat64("thickness")

	req.Spec.PaperType, _ = flags.GetString("paper-type")
	req.Spec.InsulationThickness, _ = flags.GetFloat64("insulation-thickness")
	req.Spec.ProductionSpeed, _ = flags.GetFloat64("production-speed")
	req.Spec.LineSpeed, _ = flags.GetFloat64("line-speed")
	req.Spec.PaperLayers, _ = flags.GetInt("paper-layers")
	req.Spec.ToleranceThickness, _ = flags.GetFloat64("tolerance-thickness")
	req.Spec.ToleranceWidth, _ = flags.GetFloat64("tolerance-width")

	rawSpools, _ := flags.GetStringArray("spool")
	for i, raw := range rawSpools {
		spool, err := parseSpoolFlag(raw)
		if err != nil {
			return nil, fmt.Errorf("spool %d: %w", i+1, err)
		}
		req.Spools = append(req.Spools, *spool)
	}

	return req, nil
}

// parseSpoolFlag parses one --spool value of the form
// weight:length[:diameter[:insulation]].
func parseSpoolFlag(raw string) (*primary.NewSpool, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 4 {
		return nil, fmt.Errorf("expected weight:length[:diameter[:insulation]], got %q", raw)
	}

	values := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q in %q", p, raw)
		}
		values[i] = v
	}

	spool := &primary.NewSpool{NakedWeight: values[0], Length: values[1]}
	if len(values) > 2 {
		spool.Diameter = values[2]
	}
	if len(values) > 3 {
		spool.InsulationWeight = values[3]
	}
	return spool, nil
}

// WorkOrderCmd returns the workorder command tree.
func WorkOrderCmd() *cobra.Command {
	workOrderCreateCmd.Flags().StringP("customer", "c", "", "Customer name (required)")
	workOrderCreateCmd.Flags().String("company", "", "Customer company name")
	workOrderCreateCmd.Flags().String("email", "", "Customer contact email")
	workOrderCreateCmd.Flags().String("phone", "", "Customer contact phone")
	workOrderCreateCmd.Flags().String("order-date", "", "Order date (YYYY-MM-DD)")
	workOrderCreateCmd.Flags().String("delivery-date", "", "Delivery date (YYYY-MM-DD)")
	workOrderCreateCmd.Flags().String("reference", "", "Reference number")
	workOrderCreateCmd.Flags().Float64P("weight", "w", 0, "Total order weight in kg")
	workOrderCreateCmd.Flags().Float64P("length", "l", 0, "Total order length in m")
	workOrderCreateCmd.Flags().String("product", "", "Product type")
	workOrderCreateCmd.Flags().String("material", "", "Material type")
	workOrderCreateCmd.Flags().Float64("width", 0, "Product width")
	workOrderCreateCmd.Flags().Float64("thickness", 0, "Product thickness")
	workOrderCreateCmd.Flags().StringArray("spool", nil, "Spool as weight:length[:diameter[:insulation]] (repeatable)")
	workOrderCreateCmd.Flags().String("paper-type", "", "Spec: paper type")
	workOrderCreateCmd.Flags().Float64("insulation-thickness", 0, "Spec: insulation thickness")
	workOrderCreateCmd.Flags().Float64("production-speed", 0, "Spec: production speed")
	workOrderCreateCmd.Flags().Float64("line-speed", 0, "Spec: line speed in m/min")
	workOrderCreateCmd.Flags().Int("paper-layers", 0, "Spec: paper layers")
	workOrderCreateCmd.Flags().Float64("tolerance-thickness", 0, "Spec: thickness tolerance")
	workOrderCreateCmd.Flags().Float64("tolerance-width", 0, "Spec: width tolerance")

	workOrderCmd.AddCommand(workOrderCreateCmd)
	workOrderCmd.AddCommand(workOrderListCmd)
	workOrderCmd.AddCommand(workOrderShowCmd)
	workOrderCmd.AddCommand(workOrderReportCmd)
	workOrderCmd.AddCommand(workOrderStatusCmd)

	return workOrderCmd
}
