// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/libp2p/go-libp2p/core/crypto"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	coreEvm "github.com/sygmaprotocol/sygma-core/chains/evm"
	evmClient "github.com/sygmaprotocol/sygma-core/chains/evm/client"
	coreListener "github.com/sygmaprotocol/sygma-core/chains/evm/listener"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor/gas"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor/signAndSend"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor/transaction"
	"github.com/sygmaprotocol/sygma-core/crypto/secp256k1"
	"github.com/sygmaprotocol/sygma-core/observability"
	"github.com/sygmaprotocol/sygma-core/relayer"
	"github.com/sygmaprotocol/sygma-core/relayer/message"
	"github.com/sygmaprotocol/sygma-core/store"
	"github.com/sygmaprotocol/sygma-core/store/lvldb"

	"github.com/omnivault/vault-accounting/api"
	"github.com/omnivault/vault-accounting/api/handlers"
	"github.com/omnivault/vault-accounting/bridge"
	"github.com/omnivault/vault-accounting/cache"
	"github.com/omnivault/vault-accounting/chains/evm"
	"github.com/omnivault/vault-accounting/chains/evm/calls/contracts"
	"github.com/omnivault/vault-accounting/chains/evm/calls/events"
	evmListener "github.com/omnivault/vault-accounting/chains/evm/listener"
	evmMessage "github.com/omnivault/vault-accounting/chains/evm/message"
	"github.com/omnivault/vault-accounting/comm/p2p"
	"github.com/omnivault/vault-accounting/composer"
	"github.com/omnivault/vault-accounting/config"
	"github.com/omnivault/vault-accounting/health"
	"github.com/omnivault/vault-accounting/jobs"
	"github.com/omnivault/vault-accounting/messaging"
	"github.com/omnivault/vault-accounting/metrics"
	"github.com/omnivault/vault-accounting/price"
	"github.com/omnivault/vault-accounting/topology"
)

var Version string

func Run() error {
	var err error

	configFlag := viper.GetString(config.ConfigFlagName)
	configURL := viper.GetString("config-url")

	var configuration *config.Config
	if configURL != "" {
		configuration, err = config.GetSharedConfigFromNetwork(configURL)
		panicOnError(err)
	}

	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(configuration)
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, configuration)
		panicOnError(err)
	}

	logLevel, err := zerolog.ParseLevel(configuration.CoordinatorConfig.LogLevel)
	panicOnError(err)
	observability.ConfigureLogger(logLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	topologyConfiguration := configuration.CoordinatorConfig.TopologyConfiguration
	topologyProvider := topology.NewVaultTopologyProvider(topologyConfiguration.Url, http.DefaultClient)
	topologyStore := topology.NewTopologyStore(topologyConfiguration.Path)
	rawTopology, err := topologyStore.Topology()
	// if topology is not already in file, read from provider
	if err != nil {
		rawTopology, err = topologyProvider.RawTopology(topologyConfiguration.Hash)
		panicOnError(err)

		err = topologyStore.StoreTopology(rawTopology)
		panicOnError(err)
	}
	vaultTopology, err := topology.ProcessRawTopology(rawTopology)
	panicOnError(err)
	log.Info().Msgf("Successfully loaded topology")

	privBytes, err := crypto.ConfigDecodeKey(configuration.CoordinatorConfig.P2PConfig.Key)
	panicOnError(err)

	priv, err := crypto.UnmarshalPrivateKey(privBytes)
	panicOnError(err)

	connectionGate := p2p.NewConnectionGate(vaultTopology)
	host, err := p2p.NewHost(priv, vaultTopology.Peers(), connectionGate, configuration.CoordinatorConfig.P2PConfig.Port)
	panicOnError(err)
	log.Info().Str("peerID", host.ID().String()).Msg("Successfully created libp2p host")

	go health.StartHealthEndpoint(configuration.CoordinatorConfig.HealthPort)

	communication := p2p.NewCommunication(host, "p2p/vault-accounting")

	db, err := lvldb.NewLvlDB(viper.GetString(config.BlockstoreFlagName))
	panicOnError(err)
	blockstore := store.NewBlockStore(db)

	ledgerDb, err := lvldb.NewLvlDB(viper.GetString(config.LedgerFlagName))
	panicOnError(err)

	mp, err := observability.InitMetricProvider(context.Background(), configuration.CoordinatorConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	vaultMetrics, err := metrics.NewVaultMetrics(ctx, mp.Meter("vault-metric-provider"), host, configuration.CoordinatorConfig.Env, configuration.CoordinatorConfig.Id, Version)
	panicOnError(err)

	msgChan := make(chan []*message.Message)
	outcomeChn := make(chan *bridge.RequestOutcome, 1)

	replicaPeers := make(peer.IDSlice, 0)
	for _, p := range vaultTopology.Peers() {
		replicaPeers = append(replicaPeers, p.ID)
	}
	outcomeCache := cache.NewOutcomeCache(ctx, communication, replicaPeers, outcomeChn)

	supportedChains := make(map[uint64]struct{})
	domains := make(map[uint64]relayer.RelayedChain)
	quoters := make(map[uint64]handlers.FeeQuoter)
	vaults := make(map[uint64]common.Address)
	readers := make(map[uint64]handlers.RequestReader)
	executors := make(map[uint64]handlers.RequestExecutor)
	tokenStore := config.NewTokenStore()

	cmcConfig := configuration.CoordinatorConfig.CoinmarketcapConfig
	for _, chainConfig := range configuration.ChainConfigs {
		switch chainConfig["type"] {
		case "evm":
			{
				config, err := evm.NewEVMConfig(chainConfig)
				panicOnError(err)
				chainID := *config.GeneralChainConfig.Id

				kp, err := secp256k1.NewKeypairFromString(config.GeneralChainConfig.Key)
				panicOnError(err)

				client, err := evmClient.NewEVMClient(config.GeneralChainConfig.Endpoint, kp)
				panicOnError(err)

				log.Info().Uint64("chain", chainID).Msgf("Registering EVM domain")

				l := log.With().Str("chain", fmt.Sprintf("%v", config.GeneralChainConfig.Name)).Uint64("chainID", chainID)

				gasPricer := gas.NewLondonGasPriceClient(client, nil)
				t := signAndSend.NewSignAndSendTransactor(transaction.NewTransaction, gasPricer, client)

				vaultContract, err := contracts.NewVaultContract(client, config.Vault, t)
				panicOnError(err)
				endpointContract := contracts.NewEndpointContract(client, config.Endpoint, t)
				composerContract := contracts.NewComposerContract(client, config.Composer, t)

				tokenStore.Tokens[chainID] = config.Tokens
				fallbackOracle := price.NewCoinmarketcapAPI(cmcConfig.Url, cmcConfig.ApiKey, cmcConfig.MaxAge, tokenStore.Symbols(chainID))

				feeds := make(map[common.Address]*contracts.FeedContract)
				for asset, feed := range config.AssetFeeds {
					feeds[asset] = contracts.NewFeedContract(client, feed, cmcConfig.MaxAge)
				}
				assetOracle := contracts.NewFeedOracle(feeds, fallbackOracle)

				spokeFeeds := price.NewSpokeFeedRegistry()
				for eid, feed := range config.SpokeFeeds {
					spokeFeeds.SetFeed(eid, contracts.NewValueFeedContract(client, feed))
				}

				adapter := messaging.NewAdapter(chainID, endpointContract, vaultTopology, config.AccountingManager)
				adapter.SetTrustedOFTs(tokenStore.OFTs(chainID), true)

				requestStore := bridge.NewRequestStore(ledgerDb)
				coordinator := bridge.NewCoordinator(
					chainID,
					vaultContract,
					requestStore,
					adapter,
					assetOracle,
					spokeFeeds,
					vaultTopology,
					config.AccountingManager,
					vaultMetrics,
					outcomeChn,
				)
				adapter.SetCoordinator(coordinator)

				depositStore := composer.NewDepositStore(ledgerDb)
				depositComposer := composer.NewComposer(
					chainID,
					config.GeneralChainConfig.Eid,
					config.Composer,
					vaultContract,
					composerContract,
					coordinator,
					adapter,
					vaultTopology,
					depositStore,
					vaultMetrics,
				)
				adapter.SetDepositCompleter(config.Composer, depositComposer)

				mh := message.NewMessageHandler()
				mh.RegisterMessageHandler(evmMessage.VaultActionMessage, evmMessage.NewVaultActionHandler(chainID, coordinator))

				head, err := client.LatestBlock()
				panicOnError(err)
				startBlock := head

				eventListener := events.NewListener(client)
				eventHandlers := make([]coreListener.EventHandler, 0)
				eventHandlers = append(eventHandlers, evmListener.NewDeliveryEventHandler(l, eventListener, adapter, config.Endpoint))
				eventHandlers = append(eventHandlers, evmListener.NewComposeEventHandler(l, eventListener, depositComposer, config.Composer))
				listener := coreListener.NewEVMListener(
					client,
					eventHandlers,
					blockstore,
					vaultMetrics,
					chainID,
					config.BlockRetryInterval,
					new(big.Int).SetUint64(config.GeneralChainConfig.BlockConfirmations),
					config.BlockInterval,
				)

				chain := coreEvm.NewEVMChain(listener, mh, nil, chainID, startBlock)
				domains[chainID] = chain
				supportedChains[chainID] = struct{}{}
				quoters[chainID] = adapter
				vaults[chainID] = config.Vault
				readers[chainID] = coordinator
				executors[chainID] = coordinator

				go jobs.StartStaleRequestJob(
					ctx,
					configuration.CoordinatorConfig.StaleCheckInterval,
					configuration.CoordinatorConfig.RequestTTL,
					depositComposer,
					coordinator,
					vaultMetrics,
				)
			}
		default:
			panic(fmt.Errorf("type '%s' not recognized", chainConfig["type"]))
		}
	}

	r := relayer.NewRelayer(domains, vaultMetrics)
	go r.Start(ctx, msgChan)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	replicaName := viper.GetString("name")
	log.Info().Msgf("Started replica: %s with PID: %s. Version: v%s", replicaName, host.ID().String(), Version)

	requestsHandler := handlers.NewRequestsHandler(msgChan, supportedChains)
	statusHandler := handlers.NewStatusHandler(outcomeCache, supportedChains)
	infoHandler := handlers.NewInfoHandler(readers)
	retryHandler := handlers.NewRetryHandler(executors)
	quoteHandler := handlers.NewQuoteHandler(quoters, vaults)
	go api.Serve(ctx, configuration.CoordinatorConfig.ApiAddr, requestsHandler, statusHandler, infoHandler, retryHandler, quoteHandler)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
