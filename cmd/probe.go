// -- cmd/probe.go --
package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/perspective-pom/chrome"
	"github.com/xkilldash9x/perspective-pom/component"
	"github.com/xkilldash9x/perspective-pom/internal/observability"
	"github.com/xkilldash9x/perspective-pom/locator"
)

var (
	probeURL     string
	probeXPath   bool
	probeTimeout time.Duration
)

// probeCmd resolves a locator chain against a live page and prints what it
// finds. Useful for checking selectors against a running gateway before
// committing them to page objects.
var probeCmd = &cobra.Command{
	Use:   "probe [locator]...",
	Short: "Resolve a locator chain against a live Perspective page and describe the match.",
	Long: `Probe resolves a chain of locators against a live page and prints the
matched element's text and geometry. Each argument is one link of the chain,
written as strategy=value:

  perspective-pom probe --url http://gateway:8088/data/perspective/client/Proj \
      'class=ia_container--primary' 'css=div.ia_labelComponent'

Supported strategies: css, xpath, id, class, name, tag, link, partial-link.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chain, err := parseLocatorChain(args)
		if err != nil {
			return err
		}
		return runProbe(cmd.Context(), chain)
	},
}

func init() {
	probeCmd.Flags().StringVar(&probeURL, "url", "", "page URL to probe (defaults to the configured gateway URL)")
	probeCmd.Flags().BoolVar(&probeXPath, "xpath", false, "combine the chain as XPath instead of CSS")
	probeCmd.Flags().DurationVar(&probeTimeout, "timeout", 0, "resolution timeout (defaults to wait.timeout)")
	rootCmd.AddCommand(probeCmd)
}

func runProbe(ctx context.Context, chain locator.Chain) error {
	log := observability.GetLogger()

	url := probeURL
	if url == "" {
		url = appConfig.Session().GatewayURL
	}
	timeout := probeTimeout
	if timeout == 0 {
		timeout = appConfig.Wait().Timeout
	}

	browserCfg := appConfig.Browser()
	session, err := chrome.NewSession(ctx, chrome.SessionOptions{
		Headless:     browserCfg.Headless,
		NoSandbox:    browserCfg.NoSandbox,
		UserAgent:    browserCfg.UserAgent,
		WindowWidth:  browserCfg.WindowWidth,
		WindowHeight: browserCfg.WindowHeight,
		ExtraFlags:   browserCfg.ExtraFlags,
	}, log)
	if err != nil {
		return err
	}
	defer session.Close()

	navCtx, cancel := context.WithTimeout(ctx, appConfig.Session().PageLoadTimeout)
	defer cancel()
	if err := session.Driver.Navigate(navCtx, url); err != nil {
		return fmt.Errorf("failed to load %s: %w", url, err)
	}

	// The last link is the piece itself; everything before it is parentage.
	own := chain[len(chain)-1]
	piece := component.New(session.Driver, own,
		component.WithParents(chain[:len(chain)-1]),
		component.WithTimeout(timeout),
		component.WithPollInterval(appConfig.Wait().PollInterval),
		component.WithLogger(log))

	combined, err := piece.CSSLocator()
	finder := piece.Find
	if probeXPath {
		combined, err = piece.XPathLocator()
		finder = piece.XFind
	}
	if err != nil {
		return err
	}
	log.Info("probing", zap.String("selector", combined.Value), zap.String("url", url))

	el, err := finder(ctx)
	if err != nil {
		return err
	}

	text, err := el.Text(ctx)
	if err != nil {
		return err
	}
	rect, err := el.Rect(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("selector:    %s\n", combined.Value)
	fmt.Printf("text:        %q\n", text)
	fmt.Printf("origin:      (%.1f, %.1f)\n", rect.Origin().X, rect.Origin().Y)
	fmt.Printf("termination: (%.1f, %.1f)\n", rect.Termination().X, rect.Termination().Y)
	fmt.Printf("size:        %.1f x %.1f\n", rect.Width, rect.Height)
	return nil
}

// parseLocatorChain turns strategy=value arguments into a locator chain. An
// argument without a strategy prefix is taken as a bare CSS selector.
func parseLocatorChain(args []string) (locator.Chain, error) {
	chain := make(locator.Chain, 0, len(args))
	for _, arg := range args {
		loc, err := parseLocator(arg)
		if err != nil {
			return nil, err
		}
		chain = append(chain, loc)
	}
	return chain, nil
}

func parseLocator(arg string) (locator.Locator, error) {
	strategy, value, found := strings.Cut(arg, "=")
	if !found {
		return locator.CSS(arg), nil
	}
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "css":
		return locator.CSS(value), nil
	case "xpath":
		return locator.XPath(value), nil
	case "id":
		return locator.ID(value), nil
	case "class":
		return locator.ClassName(value), nil
	case "name":
		return locator.Name(value), nil
	case "tag":
		return locator.TagName(value), nil
	case "link":
		return locator.LinkText(value), nil
	case "partial-link":
		return locator.PartialLinkText(value), nil
	default:
		// Selectors themselves may contain '=' (attribute matches), so an
		// unknown prefix falls back to a bare CSS selector.
		return locator.CSS(arg), nil
	}
}
